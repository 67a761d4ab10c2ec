package biometric

// Derivation is everything the enroll and authenticate paths need from one upload.
type Derivation struct {
	Features     FeatureVector
	TemplateHash string
}

// Derive runs normalize, extract and hash in order. No template is produced when any step fails.
func Derive(raw RawImage, userID string, iterations int) (*Derivation, error) {
	raster, err := Normalize(raw)
	if err != nil {
		return nil, err
	}
	features, err := Extract(raster)
	if err != nil {
		return nil, err
	}
	return &Derivation{
		Features:     features,
		TemplateHash: HashTemplate(features, userID, iterations),
	}, nil
}
