// Package version reports build information for iterkit binaries.
//
// The release pipeline stamps the variables with -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/iterkit/version.Version=1.2.0 \
//	    -X github.com/kbukum/iterkit/version.GitCommit=$(git rev-parse --short HEAD)"
//
// Unstamped builds fall back to the VCS settings recorded by the Go
// toolchain.
package version
