//go:build !linux && !darwin && !windows

package platform

import "log"

// Notify has no desktop backend here, so the message goes to the log.
func Notify(title, body string, opts Options) error {
	log.Printf("%s: %s: %s", opts.appName(), title, body)
	return nil
}
