package templates

// PackageManifest is package.json of a project.
type PackageManifest struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Private      bool              `json:"private"`
	Scripts      PackageScripts    `json:"scripts"`
	Dependencies map[string]string `json:"dependencies"`
}

// PackageScripts are the npm scripts of a project.
type PackageScripts struct {
	Dev   string `json:"dev"`
	Build string `json:"build"`
	Start string `json:"start"`
}

// DefaultDependencies are the dependencies of every project.
func DefaultDependencies() map[string]string {
	return map[string]string{
		"@stacks/connect":      "^7.8.2",
		"@stacks/transactions": "^6.13.0",
		"@stacks/network":      "^6.13.0",
		"next":                 "14.1.0",
		"react":                "^18.2.0",
		"react-dom":            "^18.2.0",
		"typescript":           "^5.3.3",
		"@types/react":         "^18.2.48",
		"@types/node":          "^20.11.5",
		"@types/react-dom":     "^18.2.18",
	}
}

// TSConfig is tsconfig.json of a project.
type TSConfig struct {
	CompilerOptions TSCompilerOptions `json:"compilerOptions"`
	Include         []string          `json:"include"`
	Exclude         []string          `json:"exclude"`
}

// TSCompilerOptions are the TypeScript compiler options.
type TSCompilerOptions struct {
	Target                           string              `json:"target"`
	Lib                              []string            `json:"lib"`
	AllowJs                          bool                `json:"allowJs"`
	SkipLibCheck                     bool                `json:"skipLibCheck"`
	Strict                           bool                `json:"strict"`
	ForceConsistentCasingInFileNames bool                `json:"forceConsistentCasingInFileNames"`
	NoEmit                           bool                `json:"noEmit"`
	EsModuleInterop                  bool                `json:"esModuleInterop"`
	Module                           string              `json:"module"`
	ModuleResolution                 string              `json:"moduleResolution"`
	ResolveJSONModule                bool                `json:"resolveJsonModule"`
	IsolatedModules                  bool                `json:"isolatedModules"`
	JSX                              string              `json:"jsx"`
	Incremental                      bool                `json:"incremental"`
	Paths                            map[string][]string `json:"paths"`
}

// DefaultTSConfig is the TypeScript configuration of every project.
func DefaultTSConfig() *TSConfig {
	return &TSConfig{
		CompilerOptions: TSCompilerOptions{
			Target:                           "es5",
			Lib:                              []string{"dom", "dom.iterable", "esnext"},
			AllowJs:                          true,
			SkipLibCheck:                     true,
			Strict:                           true,
			ForceConsistentCasingInFileNames: true,
			NoEmit:                           true,
			EsModuleInterop:                  true,
			Module:                           "esnext",
			ModuleResolution:                 "bundler",
			ResolveJSONModule:                true,
			IsolatedModules:                  true,
			JSX:                              "preserve",
			Incremental:                      true,
			Paths: map[string][]string{
				"@/*": {"./*"},
			},
		},
		Include: []string{"next-env.d.ts", "**/*.ts", "**/*.tsx"},
		Exclude: []string{"node_modules"},
	}
}
