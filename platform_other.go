//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package uuid

func osRelease() string {
	return ""
}
