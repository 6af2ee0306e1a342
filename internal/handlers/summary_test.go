package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/clauselens/contract-review-api/internal/models"
)

func TestSummaryHandler_Create(t *testing.T) {
	env := setupTestEnv(t)
	env.summarizer.summary = "Limits liability to fees paid."
	token := env.signup(t, "a@x.com")
	contract := env.createContract(t, token, "C1", "T1")

	w := env.doJSON(t, http.MethodPost, fmt.Sprintf("/contracts/%d/summaries", contract.ID), token, map[string]string{
		"originalText": "The liability of the vendor shall not exceed...",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var summary models.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	require.Equal(t, "The liability of the vendor shall not exceed...", summary.OriginalText)
	require.Equal(t, "Limits liability to fees paid.", summary.SummaryText)
}

func TestSummaryHandler_Create_EmptyTextIs400(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signup(t, "a@x.com")
	contract := env.createContract(t, token, "C1", "T1")

	w := env.doJSON(t, http.MethodPost, fmt.Sprintf("/contracts/%d/summaries", contract.ID), token, map[string]string{
		"originalText": "",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	env.db.Model(&models.Summary{}).Count(&count)
	require.Zero(t, count)
}

func TestSummaryHandler_Create_UpstreamFailureIs502(t *testing.T) {
	env := setupTestEnv(t)
	env.summarizer.err = errSummarizerDown
	token := env.signup(t, "a@x.com")
	contract := env.createContract(t, token, "C1", "T1")

	w := env.doJSON(t, http.MethodPost, fmt.Sprintf("/contracts/%d/summaries", contract.ID), token, map[string]string{
		"originalText": "Some clause",
	})
	require.Equal(t, http.StatusBadGateway, w.Code)

	// No partial record was persisted
	w = env.doJSON(t, http.MethodGet, fmt.Sprintf("/contracts/%d/summaries", contract.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summaries []models.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summaries))
	require.Empty(t, summaries)
}

func TestSummaryHandler_Create_NotOwnedContractIs404(t *testing.T) {
	env := setupTestEnv(t)
	tokenA := env.signup(t, "a@x.com")
	tokenB := env.signup(t, "b@x.com")
	contract := env.createContract(t, tokenA, "C1", "T1")

	w := env.doJSON(t, http.MethodPost, fmt.Sprintf("/contracts/%d/summaries", contract.ID), tokenB, map[string]string{
		"originalText": "Some clause",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSummaryHandler_List_NewestFirst(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signup(t, "a@x.com")
	userID, err := env.authService.VerifyToken(token)
	require.NoError(t, err)
	contract := env.createContract(t, token, "C1", "T1")

	base := time.Now().Add(-time.Hour)
	for i, text := range []string{"oldest", "middle", "newest"} {
		summary := models.Summary{
			ContractID:   contract.ID,
			UserID:       userID,
			OriginalText: text,
			SummaryText:  "s",
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, env.db.Create(&summary).Error)
	}

	w := env.doJSON(t, http.MethodGet, fmt.Sprintf("/contracts/%d/summaries", contract.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summaries []models.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summaries))
	require.Len(t, summaries, 3)
	require.Equal(t, "newest", summaries[0].OriginalText)
	require.Equal(t, "oldest", summaries[2].OriginalText)
}

func TestSummaryHandler_Delete(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signup(t, "a@x.com")
	userID, err := env.authService.VerifyToken(token)
	require.NoError(t, err)
	contract := env.createContract(t, token, "C1", "T1")

	summary := models.Summary{
		ContractID: contract.ID, UserID: userID, OriginalText: "clause", SummaryText: "short",
	}
	require.NoError(t, env.db.Create(&summary).Error)

	w := env.doJSON(t, http.MethodDelete,
		fmt.Sprintf("/contracts/%d/summaries/%d", contract.ID, summary.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	env.db.Model(&models.Summary{}).Where("id = ?", summary.ID).Count(&count)
	require.Zero(t, count)
}
