//go:build !amd64 && !arm64

package lanes

func init() {
	if s := envPreferredShape(); s != 0 {
		preferredShape = s
		return
	}
	preferredShape = Shape128
}
