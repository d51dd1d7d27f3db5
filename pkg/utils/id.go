package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto aleatório (senhas provisórias etc.)
func GenerateID(length int) (string, error) {
	return gonanoid.Generate(characters, length)
}
