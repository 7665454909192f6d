// Package renderer produces deployable config files from templates.
//
// Every value of the parameter snapshot replaces its <<TOKEN>> in the
// templates, where TOKEN is the upper-cased last segment of the parameter
// path. Tokens without a value are left as they are and reported. The output
// file name is the template name with the marker segment removed:
//
//	config/app.default.php -> config/app.php
//
// Example:
//
//	result, err := renderer.Render(ctx, renderer.Options{
//	    SnapshotPath: "replacement_params.yml",
//	    TemplateGlob: "config/*.default.php",
//	    OutputDir:    "config",
//	    Marker:       ".default",
//	})
package renderer
