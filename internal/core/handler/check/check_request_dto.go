package check

import "encoding/json"

type checkRequest struct {
	Date string `json:"date"`
}

func unmarshalCheckRequest(data []byte) (checkRequest, error) {
	var r checkRequest
	if len(data) == 0 {
		return r, nil
	}
	err := json.Unmarshal(data, &r)
	return r, err
}
