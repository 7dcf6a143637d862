package vos

import "fmt"

func ExampleCopyEnv() {
	env := NewMapEnv()
	CopyEnv(env, EnvList{"A=B", "C=D", "E", "F=G=H"})

	fmt.Printf("Environ(): %q\n", env.Environ())
	fmt.Printf("Getenv(\"F\"): %q\n", env.Getenv("F"))

	// Output: Environ(): ["A=B" "C=D" "E=" "F=G=H"]
	// Getenv("F"): "G=H"
}

func ExampleNewMapEnvFromEnvList() {
	env := NewMapEnvFromEnvList([]string{"PATH=/bin:/usr/bin", "HOME=/root"})

	fmt.Printf("Environ(): %q\n", env.Environ())

	// Output: Environ(): ["HOME=/root" "PATH=/bin:/usr/bin"]
}

func ExampleMapEnv_Unsetenv() {
	env := NewMapEnv()
	env.Setenv("A", "B")
	env.Setenv("C", "D")

	fmt.Println("Before:", env.Environ())
	env.Unsetenv("A")
	fmt.Println("After:", env.Environ())

	// Output: Before: [A=B C=D]
	// After: [C=D]
}

func ExampleMapEnv_LookupEnv() {
	env := NewMapEnv()
	env.Setenv("PATH", "")

	val, ok := env.LookupEnv("PATH")
	fmt.Println("Empty", "val:", val, "ok:", ok)
	val, ok = env.LookupEnv("HOME")
	fmt.Println("Missing", "val:", val, "ok:", ok)

	// Output: Empty val:  ok: true
	// Missing val:  ok: false
}
