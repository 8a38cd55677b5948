package telemetry

import "encoding/base64"

// basicAuth builds the Authorization header Langfuse expects on its OTLP
// endpoint.
func basicAuth(publicKey, secretKey string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(publicKey+":"+secretKey))
}
