package aperture

// Version is the aperture release.
const Version = "0.1.0"
