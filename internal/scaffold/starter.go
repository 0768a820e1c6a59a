package scaffold

import "github.com/qobs-build/bob/internal/makefile"

// StarterSource returns the boilerplate main file for lang
func StarterSource(lang makefile.Language) string {
	switch lang {
	case makefile.C:
		return `#include <stdio.h>

int main(int argc, char *argv[]) {
    puts("Hello, World!");
    return 0;
}
`
	case makefile.Cpp:
		return `#include <iostream>

int main(int argc, char *argv[]) {
    std::cout << "Hello, World!" << std::endl;
    return 0;
}
`
	default:
		panic("StarterSource: unreachable")
	}
}
