package adapter

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/field-sync/internal/utils"
	"github.com/MKhiriev/field-sync/models"
)

// gzipThreshold is the encoded size from which submissions are compressed.
const gzipThreshold = 1024

type requestBody struct {
	data    []byte
	gzipped bool
}

// encodeSubmitRequest stamps the payload hash, encodes req as JSON and
// gzips bodies of at least gzipThreshold bytes.
func encodeSubmitRequest(req models.SubmitFormRequest) (requestBody, error) {
	hash, err := utils.PayloadHash(req.Payload)
	if err != nil {
		return requestBody{}, fmt.Errorf("hash payload: %w", err)
	}
	req.PayloadHash = hash

	data, err := json.Marshal(req)
	if err != nil {
		return requestBody{}, err
	}
	if len(data) < gzipThreshold {
		return requestBody{data: data}, nil
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err = zw.Write(data); err != nil {
		return requestBody{}, fmt.Errorf("gzip request body: %w", err)
	}
	if err = zw.Close(); err != nil {
		return requestBody{}, fmt.Errorf("gzip request body: %w", err)
	}

	return requestBody{data: buf.Bytes(), gzipped: true}, nil
}
