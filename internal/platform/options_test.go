package platform

import "testing"

func TestOptionsDefaults(t *testing.T) {
	var o Options
	if o.appName() != DefaultAppName {
		t.Fatalf("appName = %q", o.appName())
	}
	if o.timeout() != 5000 {
		t.Fatalf("timeout = %d", o.timeout())
	}
	o = Options{AppName: "Other", TimeoutMs: 100}
	if o.appName() != "Other" || o.timeout() != 100 {
		t.Fatalf("overrides ignored: %+v", o)
	}
}
