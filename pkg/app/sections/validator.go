package sections

// Validate validates a region listing request
func (r *Request) Validate() error {
	return r.Target.Validate()
}
