package dto

// Notice is a transient message pushed to a session's websocket.
type Notice struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type MetaVersionResponse struct {
	Version  int    `json:"version"`
	Codename string `json:"codename"`
}
