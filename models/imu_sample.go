package models

// Vec3 is one three-axis reading.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// IMUSample is one inertial reading as the capture device records it:
// acceleration in g, angular velocity in deg/s, die temperature in °C.
type IMUSample struct {
	Acceleration    Vec3    `yaml:"acceleration"`
	AngularVelocity Vec3    `yaml:"angular_velocity"`
	Temperature     float64 `yaml:"temperature"`
}

// EpochStamp is a capture timestamp split into whole seconds since the
// Unix epoch and a sub-second nanosecond remainder.
type EpochStamp struct {
	Secs  int64 `yaml:"secs_since_epoch"`
	Nanos int64 `yaml:"nanos_since_epoch"`
}
