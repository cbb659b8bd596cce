package version

// version is set using -ldflags "-X go.minekube.com/collections/pkg/version.version=v1.2.3"
var version = "unknown"

// String returns the build version of the module's commands.
func String() string {
	return version
}
