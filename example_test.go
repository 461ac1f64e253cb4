package skikt_test

import (
	"fmt"
	"os"
	"path/filepath"

	skikt "github.com/0xalexb/skikt"
)

func ExampleMerge() {
	base, err := os.MkdirTemp("", "skikt-example")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	defer func() { _ = os.RemoveAll(base) }()

	// A two-level hierarchy: the base provides defaults, the service
	// directory overrides them.
	files := map[string]string{
		"config.yaml":     "log_level: info\nport: 8080\n",
		"svc/config.yaml": "port: 9090\n",
	}

	for rel, content := range files {
		path := filepath.Join(base, filepath.FromSlash(rel))

		err = os.MkdirAll(filepath.Dir(path), 0o750)
		if err != nil {
			fmt.Println("error:", err)

			return
		}

		err = os.WriteFile(path, []byte(content), 0o600)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
	}

	result, err := skikt.Merge(base, filepath.Join(base, "svc"))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	level, _ := result.Config.Get("log_level")
	port, _ := result.Config.Get("port")

	levelStr, _ := level.AsString()
	portInt, _ := port.AsInt()

	fmt.Println("log_level:", levelStr)
	fmt.Println("port:", portInt)
	fmt.Println("diagnostics:", len(result.Diagnostics))

	// Output:
	// log_level: info
	// port: 9090
	// diagnostics: 0
}

func ExampleProvider() {
	base, err := os.MkdirTemp("", "skikt-example")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	defer func() { _ = os.RemoveAll(base) }()

	content := "server:\n  host: api.internal\n  port: 443\n"

	err = os.WriteFile(filepath.Join(base, "config.yaml"), []byte(content), 0o600)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	result, err := skikt.Merge(base, base)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	type server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	}

	cfg, err := skikt.Provider(&server{}, "server")(result)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("%s:%d\n", cfg.Host, cfg.Port)

	// Output:
	// api.internal:443
}
