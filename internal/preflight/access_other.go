//go:build !unix

package preflight

import "os"

// checkReadWrite probes write access by creating and removing a file.
func checkReadWrite(path string) error {
	f, err := os.CreateTemp(path, ".imagestage-probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		return err
	}
	return os.Remove(name)
}
