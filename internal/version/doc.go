// Package version is the single home of the program name and release version.
//
// Every surface that reports a version (the version command, release tooling
// reading `go version -m`) must read Name and Version from here rather than
// repeating the literal. The package also reports the versions of the
// third-party modules qimu is built against, using the build information the
// Go toolchain embeds in every binary.
package version
