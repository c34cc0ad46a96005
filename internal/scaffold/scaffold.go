// Package scaffold materializes starter files for a newly created project.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// Template selects which starter skeleton to write.
type Template int

const (
	Rust Template = iota
	Python
	JavaScript
	TypeScript
	Go
	Blank
)

// All returns every template in menu order.
func All() []Template {
	return []Template{Rust, Python, JavaScript, TypeScript, Go, Blank}
}

// DisplayName returns the menu label for the template.
func (t Template) DisplayName() string {
	switch t {
	case Rust:
		return "Rust"
	case Python:
		return "Python"
	case JavaScript:
		return "JavaScript"
	case TypeScript:
		return "TypeScript"
	case Go:
		return "Go"
	default:
		return "Blank"
	}
}

// Create makes path and fills it with the template's starter files. The
// project name baked into manifests is the directory's base name.
func Create(path string, t Template) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("cannot create project directory: %w", err)
	}
	name := filepath.Base(path)

	switch t {
	case Rust:
		return createRust(path, name)
	case Python:
		return createPython(path)
	case JavaScript:
		return createJavaScript(path, name)
	case TypeScript:
		return createTypeScript(path, name)
	case Go:
		return createGo(path, name)
	default:
		return createBlank(path, name)
	}
}

func createRust(path, name string) error {
	cargo := fmt.Sprintf(`[package]
name = "%s"
version = "0.1.0"
edition = "2021"

[dependencies]
`, name)
	if err := os.WriteFile(filepath.Join(path, "Cargo.toml"), []byte(cargo), 0644); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(path, "src"), 0755); err != nil {
		return err
	}
	mainRs := "fn main() {\n    println!(\"Hello, world!\");\n}\n"
	return os.WriteFile(filepath.Join(path, "src", "main.rs"), []byte(mainRs), 0644)
}

func createPython(path string) error {
	mainPy := "#!/usr/bin/env python3\n\nif __name__ == \"__main__\":\n    print(\"Hello, world!\")\n"
	if err := os.WriteFile(filepath.Join(path, "main.py"), []byte(mainPy), 0644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(path, "requirements.txt"), nil, 0644)
}

func createJavaScript(path, name string) error {
	pkg := fmt.Sprintf(`{
  "name": "%s",
  "version": "1.0.0",
  "description": "",
  "main": "index.js",
  "scripts": {
    "start": "node index.js"
  },
  "dependencies": {}
}
`, name)
	if err := os.WriteFile(filepath.Join(path, "package.json"), []byte(pkg), 0644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(path, "index.js"), []byte("console.log('Hello, world!');\n"), 0644)
}

func createTypeScript(path, name string) error {
	pkg := fmt.Sprintf(`{
  "name": "%s",
  "version": "1.0.0",
  "description": "",
  "main": "dist/index.js",
  "scripts": {
    "build": "tsc",
    "start": "node dist/index.js",
    "dev": "ts-node src/index.ts"
  },
  "devDependencies": {
    "typescript": "^5.0.0",
    "@types/node": "^20.0.0",
    "ts-node": "^10.0.0"
  }
}
`, name)
	if err := os.WriteFile(filepath.Join(path, "package.json"), []byte(pkg), 0644); err != nil {
		return err
	}

	tsconfig := `{
  "compilerOptions": {
    "target": "ES2020",
    "module": "commonjs",
    "outDir": "./dist",
    "rootDir": "./src",
    "strict": true,
    "esModuleInterop": true,
    "skipLibCheck": true,
    "forceConsistentCasingInFileNames": true
  }
}
`
	if err := os.WriteFile(filepath.Join(path, "tsconfig.json"), []byte(tsconfig), 0644); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(path, "src"), 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(path, "src", "index.ts"), []byte("console.log('Hello, world!');\n"), 0644)
}

func createGo(path, name string) error {
	goMod := fmt.Sprintf("module %s\n\ngo 1.23\n", name)
	if err := os.WriteFile(filepath.Join(path, "go.mod"), []byte(goMod), 0644); err != nil {
		return err
	}
	mainGo := "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"Hello, world!\")\n}\n"
	return os.WriteFile(filepath.Join(path, "main.go"), []byte(mainGo), 0644)
}

func createBlank(path, name string) error {
	readme := fmt.Sprintf("# %s\n\n", name)
	return os.WriteFile(filepath.Join(path, "README.md"), []byte(readme), 0644)
}
