package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/autofit/pkg/animation"
	drifttest "github.com/go-drift/autofit/pkg/testing"
)

// This example shows how to drive a value with a scheduler.
func ExampleValue() {
	clock := drifttest.NewFakeClock()
	sched := animation.NewScheduler(clock)

	opacity := animation.NewValue(sched, 0)
	defer opacity.Dispose()

	opacity.AnimateTo(1)
	for sched.HasActiveTickers() {
		clock.Advance(16 * time.Millisecond)
		sched.Tick()
	}

	fmt.Printf("Opacity: %.1f (%s)\n", opacity.Get(), opacity.Status())

	// Output:
	// Opacity: 1.0 (completed)
}

// This example shows a timed transition using an easing curve.
func ExampleValue_timed() {
	clock := drifttest.NewFakeClock()
	sched := animation.NewScheduler(clock)

	scale := animation.NewValue(sched, 0)
	scale.Duration = 100 * time.Millisecond
	scale.Curve = animation.LinearCurve

	scale.AnimateTo(0.5)
	sched.Tick()
	clock.Advance(50 * time.Millisecond)
	sched.Tick()
	fmt.Printf("Halfway: %.2f\n", scale.Get())

	clock.Advance(50 * time.Millisecond)
	sched.Tick()
	fmt.Printf("Done: %.2f\n", scale.Get())

	// Output:
	// Halfway: 0.25
	// Done: 0.50
}

// This example shows how to listen for status changes.
func ExampleValue_AddStatusListener() {
	sched := animation.NewScheduler(drifttest.NewFakeClock())
	v := animation.NewValue(sched, 0)

	v.AddStatusListener(func(status animation.AnimationStatus) {
		fmt.Println("status:", status)
	})

	v.AnimateTo(1)
	v.Snap(0)

	// Output:
	// status: forward
	// status: dismissed
}

// This example shows how to use spring physics for natural motion.
func ExampleSpringSimulation() {
	sim := animation.NewSpringSimulation(
		animation.BouncySpring(),
		0,   // current position
		500, // initial velocity
		300, // target position
	)

	dt := 0.016 // ~60fps
	for !sim.Step(dt) {
		_ = sim.Position()
	}

	fmt.Printf("Final position: %.0f\n", sim.Position())

	// Output:
	// Final position: 300
}

// This example shows how to create a custom easing curve.
func ExampleCubicBezier() {
	customEase := animation.CubicBezier(0.4, 0.0, 0.2, 1.0)

	fmt.Printf("Progress 0.0 -> %.2f\n", customEase(0.0))
	fmt.Printf("Progress 0.5 -> %.2f\n", customEase(0.5))
	fmt.Printf("Progress 1.0 -> %.2f\n", customEase(1.0))

	// Output:
	// Progress 0.0 -> 0.00
	// Progress 0.5 -> 0.78
	// Progress 1.0 -> 1.00
}

// This example shows how to create a tween for basic interpolation.
func ExampleTween() {
	opacity := animation.TweenFloat64(0.0, 1.0)
	fmt.Printf("Opacity at 0.5: %.1f\n", opacity.Evaluate(0.5))

	// Output:
	// Opacity at 0.5: 0.5
}
