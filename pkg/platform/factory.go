package platform

// NewPlatform creates the real-OS platform implementation.
func NewPlatform() Platform {
	return &DefaultPlatform{}
}
