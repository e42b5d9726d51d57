package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"palpite/config"
	"time"

	"github.com/go-resty/resty/v2"
)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

// geminiRequest is the generateContent payload
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

// geminiResponse is the generateContent result
type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// FallbackAnalysis is the deterministic text used whenever the AI backend
// cannot produce an answer. It always references both team names.
func FallbackAnalysis(matchName, league, teamHome, teamAway string) string {
	return fmt.Sprintf(
		"Análise para %s (%s): Com base no desempenho recente de %s e %s, espera-se um jogo equilibrado com tendência a poucos gols.",
		matchName, league, teamHome, teamAway,
	)
}

// GenerateMatchAnalysis asks Gemini for a short betting analysis of the match.
// It never returns an error: missing credentials, network failures, malformed
// responses and empty candidates all produce the fallback text, so callers
// can use the result unconditionally.
func GenerateMatchAnalysis(matchName, league, teamHome, teamAway string) string {
	if config.AppConfig.GeminiApiKey == "" {
		return FallbackAnalysis(matchName, league, teamHome, teamAway)
	}

	prompt := fmt.Sprintf(`Você é um especialista em análise de apostas esportivas para o site "Central do Palpite".
Analise o seguinte jogo de futebol:
Partida: %s
Liga: %s
Time da Casa: %s
Time de Fora: %s

Crie uma análise técnica e curta (máximo 400 caracteres) com argumentos sólidos sobre o que esperar deste jogo.
Foque em tendências recentes, força dos elencos e clima da partida.
Seja profissional e persuasivo. Não use negrito ou formatação markdown complexa, apenas texto limpo.`,
		matchName, league, teamHome, teamAway)

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}

	client := resty.New().SetTimeout(15 * time.Second)
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", config.AppConfig.GeminiApiKey).
		SetBody(reqBody).
		Post(config.AppConfig.GeminiApiURL)
	if err != nil {
		log.Printf("Error generating AI analysis: %v", err)
		return FallbackAnalysis(matchName, league, teamHome, teamAway)
	}
	if resp.StatusCode() != 200 {
		log.Printf("AI analysis API returned status %d: %s", resp.StatusCode(), resp.String())
		return FallbackAnalysis(matchName, league, teamHome, teamAway)
	}

	var data geminiResponse
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		log.Printf("Failed to parse AI analysis response: %v", err)
		return FallbackAnalysis(matchName, league, teamHome, teamAway)
	}

	if len(data.Candidates) == 0 || len(data.Candidates[0].Content.Parts) == 0 {
		return FallbackAnalysis(matchName, league, teamHome, teamAway)
	}

	analysis := data.Candidates[0].Content.Parts[0].Text
	if analysis == "" {
		return FallbackAnalysis(matchName, league, teamHome, teamAway)
	}

	return analysis
}
