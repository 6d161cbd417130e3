// SPDX-License-Identifier: EPL-2.0

package soundscape_test

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/ik5/soundscape"
	"github.com/ik5/soundscape/compose"
	"github.com/ik5/soundscape/synth"
)

// Example_generate renders a short, reproducible soundscape and inspects it.
func Example_generate() {
	rng := rand.New(rand.NewPCG(1, 1))

	buf, err := soundscape.Generate(2*time.Second, compose.Options{
		SampleRate: 8000,
		Rand:       rng,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("samples: %d\n", len(buf))
	fmt.Printf("peak: %.3f\n", synth.Peak(buf))
	// Output:
	// samples: 16000
	// peak: 0.891
}

// Example_customPatterns generates with a custom headroom and sample rate.
func Example_customPatterns() {
	rng := rand.New(rand.NewPCG(7, 7))

	c, err := compose.New(compose.Options{
		SampleRate: 16000,
		HeadroomDB: 3,
		Rand:       rng,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	buf, err := c.Render(time.Second)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("samples: %d\n", len(buf))
	fmt.Printf("peak: %.3f\n", synth.Peak(buf))
	// Output:
	// samples: 16000
	// peak: 0.708
}
