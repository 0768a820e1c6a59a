// Package makefile renders a Makefile for a C or C++ project with separate debug
// and release profiles. Rendering is pure: no filesystem or environment access.
package makefile

import "strings"

const (
	// Filename is the name the generated text is written under
	Filename = "Makefile"

	ObjDir = "objs"
	BinDir = "bin"

	DebugObjDirVar   = "$(DEBUG_OBJ_DIR)"
	ReleaseObjDirVar = "$(RELEASE_OBJ_DIR)"

	debugFlag   = "-g"
	releaseFlag = "-O3"
)

// SourcePattern is the make pattern matching one source file, e.g. src/%.c
func SourcePattern(opts Options) string {
	if opts.Layout().UsesSource() {
		return "src/%." + opts.SourceExtension()
	}
	return "%." + opts.SourceExtension()
}

// SourceWildcard expands to every source file directly inside the source directory
func SourceWildcard(opts Options) string {
	_, srcPrefix := opts.DirectoryPaths()
	return "$(wildcard " + srcPrefix + "*." + opts.SourceExtension() + ")"
}

// ObjectPattern maps $(SRCS) to object files rooted under objDir
func ObjectPattern(objDir string) string {
	return "$(patsubst $(SRC_PATTERN)," + objDir + "/%.o,$(SRCS))"
}

// VariablesBlock renders the variable assignments heading the Makefile
func VariablesBlock(opts Options) string {
	var sb strings.Builder

	writeln(&sb, "PROJECT := ", opts.Name())
	writeln(&sb, "COMPILER := ", opts.Compiler())
	writeln(&sb, "COMPILER_FLAGS := ", opts.CompilerFlags())
	writeln(&sb, "LD_FLAGS := ", opts.LinkerFlags())
	writeln(&sb, "SRC_PATTERN := ", SourcePattern(opts))
	writeln(&sb, "OBJ_DIR := ", ObjDir)
	writeln(&sb, "DEBUG_OBJ_DIR := $(OBJ_DIR)/debug")
	writeln(&sb, "RELEASE_OBJ_DIR := $(OBJ_DIR)/release")
	writeln(&sb, "BIN_DIR := ", BinDir)
	writeln(&sb, "DEBUG_BIN_DIR := $(BIN_DIR)/debug")
	writeln(&sb, "RELEASE_BIN_DIR := $(BIN_DIR)/release")

	return sb.String()
}

// RuleBlock renders the sources, objects and targets of the Makefile.
// Libraries only reach it through $(LD_FLAGS).
func RuleBlock(opts Options) string {
	var sb strings.Builder
	name := opts.Name()

	writeln(&sb, "SRCS := ", SourceWildcard(opts))
	writeln(&sb, "DEBUG_OBJS := ", ObjectPattern(DebugObjDirVar))
	writeln(&sb, "RELEASE_OBJS := ", ObjectPattern(ReleaseObjDirVar))
	writeln(&sb)

	writeln(&sb, ".PHONY: all directories release clean run run-release")
	writeln(&sb)

	writeln(&sb, "all: directories ", name)
	writeln(&sb)

	writeln(&sb, "directories:")
	recipe(&sb, "mkdir -p $(DEBUG_OBJ_DIR) $(RELEASE_OBJ_DIR) $(DEBUG_BIN_DIR) $(RELEASE_BIN_DIR)")
	writeln(&sb)

	// link; the bin dir is created here too so each target works on its own
	writeln(&sb, name, ": $(DEBUG_OBJS)")
	recipe(&sb, "mkdir -p $(DEBUG_BIN_DIR)")
	recipe(&sb, "$(COMPILER) $(COMPILER_FLAGS) ", debugFlag, " -o $(DEBUG_BIN_DIR)/$@ $^ $(LD_FLAGS)")
	writeln(&sb)

	writeln(&sb, "release: $(RELEASE_OBJS)")
	recipe(&sb, "mkdir -p $(RELEASE_BIN_DIR)")
	recipe(&sb, "$(COMPILER) $(COMPILER_FLAGS) ", releaseFlag, " -o $(RELEASE_BIN_DIR)/$(PROJECT) $^ $(LD_FLAGS)")
	writeln(&sb)

	// compile, keeping the subdirectory of each source under the object dir
	writeObjectRule(&sb, DebugObjDirVar, debugFlag)
	writeObjectRule(&sb, ReleaseObjDirVar, releaseFlag)

	writeln(&sb, "clean:")
	recipe(&sb, "rm -rf $(OBJ_DIR) $(BIN_DIR)")
	writeln(&sb)

	writeln(&sb, "run: all")
	recipe(&sb, "./$(DEBUG_BIN_DIR)/$(PROJECT)")
	writeln(&sb)

	writeln(&sb, "run-release: directories release")
	recipe(&sb, "./$(RELEASE_BIN_DIR)/$(PROJECT)")

	return sb.String()
}

func writeObjectRule(sb *strings.Builder, objDir, profileFlag string) {
	writeln(sb, objDir, "/%.o: $(SRC_PATTERN)")
	recipe(sb, "mkdir -p $(@D)")
	recipe(sb, "$(COMPILER) $(COMPILER_FLAGS) ", profileFlag, " -c $< -o $@")
	writeln(sb)
}

// Generate renders the complete Makefile for opts. The same options always
// produce byte-identical output.
func Generate(opts Options) string {
	return VariablesBlock(opts) + "\n" + RuleBlock(opts)
}
