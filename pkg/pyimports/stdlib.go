package pyimports

// stdlibNames is a hardcoded snapshot of top-level CPython module
// names. It is not derived from any interpreter at runtime and is
// deliberately incomplete: it covers the names that show up in
// practice, which is all the exclusion filter needs.
var stdlibNames = []string{
	"__future__", "abc", "argparse", "array", "ast", "asyncio",
	"base64", "bisect", "builtins", "calendar", "collections",
	"concurrent", "configparser", "contextlib", "copy", "csv",
	"ctypes", "dataclasses", "datetime", "decimal", "difflib", "dis",
	"email", "enum", "errno", "fnmatch", "fractions", "functools",
	"gc", "getopt", "getpass", "glob", "gzip", "hashlib", "heapq",
	"hmac", "html", "http", "importlib", "inspect", "io", "itertools",
	"json", "logging", "math", "mimetypes", "multiprocessing",
	"operator", "os", "pathlib", "pickle", "platform", "pprint",
	"queue", "random", "re", "sched", "secrets", "select", "shlex",
	"shutil", "signal", "socket", "sqlite3", "ssl", "stat",
	"statistics", "string", "struct", "subprocess", "sys", "tempfile",
	"textwrap", "threading", "time", "timeit", "tkinter", "token",
	"tokenize", "traceback", "types", "typing", "unicodedata",
	"unittest", "urllib", "uuid", "venv", "warnings", "weakref",
	"xml", "zipfile", "zlib",
}

// stdlibModules is the read-only lookup set, built once at process
// start. Membership is exact-match on the full name, so dotted
// references like "os.path" only match after top-level truncation.
var stdlibModules = func() map[string]struct{} {
	set := make(map[string]struct{}, len(stdlibNames))

	for _, name := range stdlibNames {
		set[name] = struct{}{}
	}

	return set
}()

// IsStdlib reports whether name is, verbatim, a known standard-library
// top-level module name.
func IsStdlib(name string) bool {
	_, ok := stdlibModules[name]

	return ok
}
