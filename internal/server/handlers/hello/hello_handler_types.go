package hello

const Greeting = "Hello from Jenkins CI/CD!"

type IndexResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
