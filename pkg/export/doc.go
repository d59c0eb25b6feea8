// Package export writes rendered dashboards to disk as PNG files.
//
// [PNG] trims the image to its content (plus a margin), encodes it, records
// the resolution in a pHYs chunk so viewers and documentation tools know the
// intended DPI, and overwrites the destination file. The destination
// directory must already exist; a missing directory is reported as
// [errors.ErrCodeOutputPath] and nothing is written.
//
//	err := export.PNG(img, "docs/images/dashboard-soc.png",
//	    export.WithDPI(150),
//	    export.WithBackground(th.Background()),
//	    export.WithTrim(0.1),
//	)
package export
