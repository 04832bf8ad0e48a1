package services

import (
	"fmt"
	"regexp"
	"strings"
)

// changeIDPattern matchea una línea de trailer Change-Id completa: una "I"
// seguida de exactamente 40 caracteres hex, con espacios opcionales alrededor.
var changeIDPattern = regexp.MustCompile(`^\s*Change-Id: I[0-9a-f]{40}\s*$`)

// IsChangeIDLine indica si la línea es un trailer Change-Id a eliminar.
func IsChangeIDLine(line string) bool {
	return changeIDPattern.MatchString(line)
}

// CherryPickedFrom construye la línea de procedencia que se agrega al final
// del mensaje reescrito.
func CherryPickedFrom(sha string) string {
	return fmt.Sprintf("(cherry picked from commit %s)", sha)
}

// splitLines separa en líneas descartando la línea vacía final que produce un
// string terminado en newline.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// StripCommitHeader recibe la representación cruda de un objeto commit
// (header, línea en blanco, cuerpo) y devuelve sólo el cuerpo. Un objeto sin
// línea en blanco está malformado y es un error, no un mensaje vacío.
func StripCommitHeader(raw string) (string, error) {
	lines := splitLines(raw)
	for i, line := range lines {
		if line == "" {
			return strings.Join(lines[i+1:], "\n"), nil
		}
	}
	return "", fmt.Errorf("el objeto commit no tiene línea en blanco después del header")
}

// ReformatMessage elimina todos los trailers Change-Id del mensaje, separa con
// una línea en blanco si hace falta y agrega la línea de procedencia. Es una
// función pura: mismo (mensaje, sha), mismo resultado.
func ReformatMessage(oldMsg, sha string) string {
	newMsg := make([]string, 0, strings.Count(oldMsg, "\n")+2)

	for _, line := range splitLines(oldMsg) {
		if !IsChangeIDLine(line) {
			newMsg = append(newMsg, line)
		}
	}

	if len(newMsg) > 0 && strings.TrimSpace(newMsg[len(newMsg)-1]) != "" {
		newMsg = append(newMsg, "")
	}

	newMsg = append(newMsg, CherryPickedFrom(sha))
	return strings.Join(newMsg, "\n")
}
