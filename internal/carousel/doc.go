// Package carousel implements the behavior behind the recipe carousel: an
// auto-advancing, scroll-synchronized index over a fixed list of slots.
//
// # Components
//
//   - [Controller]: owns the active index and the scroll offset, advances the
//     index on a recurring timer and reconciles it with user scrolling.
//
//   - [Scheduler]: the recurring timer primitive. [DispatchScheduler] runs a
//     background ticker and hands each tick to the UI thread;
//     [FrameScheduler] runs on the animation frame ticker so a fake clock can
//     drive it.
//
//   - [Geometry]: slot layout derived from the viewport width.
//
//   - [CardTransformAt] and [DotTransformAt]: pure offset-to-visual mapping.
//
//   - [Viewability] and [Settler]: the two scroll observers that feed the
//     controller when the user drags.
//
//   - [OffsetAnimator]: eases a scroll offset to a slot for programmatic
//     scrolls.
//
// # Usage
//
//	controller := carousel.NewController(len(items), surface, carousel.FrameScheduler{})
//	if err := controller.Start(3 * time.Second); err != nil {
//	    controller.Dispose()
//	    return err
//	}
//	defer controller.Dispose()
//
// All methods must be called from the UI thread.
package carousel
