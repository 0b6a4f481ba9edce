package proxy_test

import (
	"errors"
	"fmt"

	"github.com/boushphong/go-design-patterns/proxy"
)

// ExampleNewLazy stacks the protection proxy over the virtual proxy; the
// caller uses the same Diagnostics interface at every layer.
func ExampleNewLazy() {
	lazy, err := proxy.NewLazy(func() (*proxy.ECULink, error) {
		fmt.Println("dialing the ECU...") // happens exactly once
		return proxy.NewECULink(map[string]string{
			"V-1": "P0300 random misfire",
		}), nil
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	diag, err := proxy.NewGuarded(lazy, "fleet-secret", "fleet-secret")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for i := 0; i < 3; i++ {
		code, err := diag.ReadFault("V-1")
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println("fault:", code)
	}
	fmt.Println("dials:", lazy.Dials(), "| cache hits:", lazy.Hits())

	intruder, _ := proxy.NewGuarded(lazy, "fleet-secret", "guess")
	_, err = intruder.ReadFault("V-1")
	fmt.Println("intruder denied:", errors.Is(err, proxy.ErrAccessDenied))
	// Output:
	// dialing the ECU...
	// fault: P0300 random misfire
	// fault: P0300 random misfire
	// fault: P0300 random misfire
	// dials: 1 | cache hits: 2
	// intruder denied: true
}
