package vehicle

// DecodedVehicle is what a VIN decodes to. Empty fields are omitted.
type DecodedVehicle struct {
	Make         string `json:"make,omitempty"`
	Model        string `json:"model,omitempty"`
	Year         int    `json:"year"`
	Trim         string `json:"trim,omitempty"`
	BodyStyle    string `json:"body_style,omitempty"`
	Engine       string `json:"engine,omitempty"`
	Transmission string `json:"transmission,omitempty"`
	Drivetrain   string `json:"drivetrain,omitempty"`
	FuelType     string `json:"fuel_type,omitempty"`
}

type DecodeInput struct {
	VIN string
}
