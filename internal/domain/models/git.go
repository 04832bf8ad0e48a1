package models

// GitResult contiene la salida capturada de una sola invocación de git.
// Vive únicamente durante la etapa que la produjo.
type GitResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}
