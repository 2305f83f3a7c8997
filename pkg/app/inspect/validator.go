package inspect

// Validate validates a header inspection request
func (r *Request) Validate() error {
	return r.Target.Validate()
}
