// Package validate cross-checks the combination algorithms against a ground
// truth.
//
// Small tables are benchmarked against exhaustive enumeration; larger ones
// against the exact iterative convolution. Every other method is compared
// over a display window and classified by its largest absolute deviation.
package validate
