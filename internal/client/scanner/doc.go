// Package scanner binds a frame source to barcode decoding.
//
// A Camera pushes frames into a Coordinator. The coordinator keeps a single
// pending frame: a newer frame replaces (and closes) one that is still
// waiting. One goroutine analyzes frames strictly one after another. The
// first barcode found in a frame is classified and handed to the consumer,
// and every frame is closed once analyzed.
//
// Torch state is observable; each change is applied to the bound camera.
package scanner
