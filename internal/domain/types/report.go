package types

import "encoding/json"

// Report is a snapshot together with the image chosen for it. Image is a
// file path when computed locally and a URL when fetched from a server.
type Report struct {
	Snapshot Snapshot
	Image    string
}

// MarshalJSON encodes the snapshot keys plus "visualization".
func (r Report) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(r.Snapshot)
	if err != nil {
		return nil, err
	}
	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, err
	}
	if fields["visualization"], err = json.Marshal(r.Image); err != nil {
		return nil, err
	}
	return json.Marshal(fields)
}

// UnmarshalJSON mirrors MarshalJSON.
func (r *Report) UnmarshalJSON(data []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}
	var aux struct {
		Visualization string `json:"visualization"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = Report{Snapshot: snap, Image: aux.Visualization}
	return nil
}
