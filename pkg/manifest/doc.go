// Package manifest loads a fragment's build-emitted asset manifest.
//
// Bundlers write a small file naming the entry script, the stylesheet, and
// the shared dependency bundles a fragment needs. Load turns that file into
// the AppAssets value the adapter encodes into the Link response header:
//
//	assets, err := manifest.Load("dist/assets-manifest.yaml")
//	if err != nil {
//		log.Error("unreadable asset manifest", slog.String("error", err.Error()))
//	}
//
// The file format is YAML; JSON manifests parse as well since YAML is a
// superset. Dependency order in the file is preserved in the Link header.
package manifest
