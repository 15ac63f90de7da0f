package platform

// DefaultAppName identifies the application when Options.AppName is empty.
const DefaultAppName = "ShapEdit"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// AppName is reported to notification centers that group by sender.
	AppName string
	// IconPath, when non-empty, points to an image file the notification center
	// should display with the notification if supported by the platform.
	IconPath string
	// TimeoutMs is the display time hint; zero uses 5 seconds.
	TimeoutMs int32
}

func (o Options) appName() string {
	if o.AppName == "" {
		return DefaultAppName
	}
	return o.AppName
}

func (o Options) timeout() int32 {
	if o.TimeoutMs <= 0 {
		return 5000
	}
	return o.TimeoutMs
}
