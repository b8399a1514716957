// Package api implements the REST surface of the finsight backend.
package api

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"finsight/internal/config"
	"finsight/internal/models"
	"finsight/internal/services/dataloader"
	"finsight/internal/services/forecast"
	"finsight/internal/services/insights"
	"finsight/internal/services/subscriptions"
	"finsight/internal/store"
	"finsight/internal/web"
)

var (
	cfg *config.Config
	st  *store.Store
)

// allowedExtensions gates uploads by filename extension. The list matches
// what the front end offers in its file picker; only spreadsheet formats
// make it past the parse step.
var allowedExtensions = map[string]bool{
	"txt": true, "pdf": true, "png": true, "jpg": true,
	"jpeg": true, "gif": true, "csv": true, "xlsx": true, "xls": true,
}

// maxUploadBytes caps multipart memory buffering
const maxUploadBytes = 10 << 20

// Initialize sets up the api package with required dependencies
func Initialize(c *config.Config, s *store.Store) {
	cfg = c
	st = s
}

// RegisterRoutes registers all API routes
func RegisterRoutes(r chi.Router) {
	r.Get("/api/hello", handleHello)
	r.Post("/api/upload-transactions", handleUploadTransactions)
	r.Get("/api/transactions", handleTransactions)
	r.Get("/api/insights/spending", handleSpendingInsights)
	r.Get("/api/subscriptions", handleSubscriptions)
	r.Get("/api/goals", handleGoals)
	r.Post("/api/goals", handleCreateGoal)
	r.Get("/api/goals/{id}/forecast", handleGoalForecast)
	r.Get("/api/analytics/summary", handleAnalyticsSummary)
}

func handleHello(w http.ResponseWriter, r *http.Request) {
	web.JSON(w, http.StatusOK, map[string]interface{}{
		"message":            "Hello from Finsight!",
		"status":             "connected",
		"transactions_count": st.TransactionCount(),
	})
}

func handleUploadTransactions(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		web.Error(w, http.StatusBadRequest, "No file part")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		web.Error(w, http.StatusBadRequest, "No file part")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		web.Error(w, http.StatusBadRequest, "No selected file")
		return
	}
	if !allowedFile(header.Filename) {
		web.Error(w, http.StatusBadRequest, "Invalid file type")
		return
	}

	// Spool to a scratch file; the uuid prefix keeps concurrent uploads
	// from colliding on disk. The scratch file never outlives the request.
	scratchPath := filepath.Join(cfg.UploadsDirectory,
		uuid.NewString()+"_"+sanitizeFilename(header.Filename))
	if err := saveUpload(file, scratchPath); err != nil {
		web.Error(w, http.StatusInternalServerError, "Error reading file: "+err.Error())
		return
	}
	defer os.Remove(scratchPath)

	var table *dataloader.Table
	switch extension(header.Filename) {
	case "csv":
		table, err = dataloader.ReadCSV(scratchPath)
	case "xlsx", "xls":
		table, err = dataloader.ReadWorkbook(scratchPath)
	default:
		web.Error(w, http.StatusBadRequest, "Unsupported file format")
		return
	}
	if err != nil {
		web.Error(w, http.StatusInternalServerError, "Error reading file: "+err.Error())
		return
	}

	transactions, err := dataloader.BuildTransactions(table)
	if err != nil {
		// No partial commit: the prior transaction set stays authoritative
		web.Error(w, http.StatusInternalServerError, "Error processing data: "+err.Error())
		return
	}

	spending, haveSpending := insights.Generate(transactions)
	subs := subscriptions.Detect(transactions)
	st.ReplaceTransactions(transactions, spending, haveSpending, subs)

	log.Printf("Processed upload %s: %d transactions", header.Filename, len(transactions))
	web.JSON(w, http.StatusOK, map[string]interface{}{
		"message":                fmt.Sprintf("Successfully processed %d transactions", len(transactions)),
		"transactions_processed": len(transactions),
	})
}

func handleTransactions(w http.ResponseWriter, r *http.Request) {
	web.JSON(w, http.StatusOK, st.Transactions())
}

func handleSpendingInsights(w http.ResponseWriter, r *http.Request) {
	web.JSON(w, http.StatusOK, st.SpendingInsights())
}

func handleSubscriptions(w http.ResponseWriter, r *http.Request) {
	web.JSON(w, http.StatusOK, st.Subscriptions())
}

func handleGoals(w http.ResponseWriter, r *http.Request) {
	web.JSON(w, http.StatusOK, st.Goals())
}

// createGoalRequest uses pointers so missing fields are distinguishable
// from zero values
type createGoalRequest struct {
	Title         *string  `json:"title"`
	TargetAmount  *float64 `json:"target_amount"`
	CurrentAmount *float64 `json:"current_amount"`
	TargetDate    *string  `json:"target_date"`
	GoalType      string   `json:"goal_type"`
}

func handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var req createGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if req.Title == nil || req.TargetAmount == nil || req.TargetDate == nil {
		web.Error(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	goal := models.Goal{
		Title:        *req.Title,
		TargetAmount: *req.TargetAmount,
		TargetDate:   *req.TargetDate,
		GoalType:     req.GoalType,
	}
	if req.CurrentAmount != nil {
		goal.CurrentAmount = *req.CurrentAmount
	}
	if goal.GoalType == "" {
		goal.GoalType = "savings"
	}

	created := st.AddGoal(goal)
	web.JSON(w, http.StatusCreated, created)
}

func handleGoalForecast(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "id")

	goal, ok := st.GoalByID(goalID)
	if !ok {
		web.Error(w, http.StatusNotFound, "Goal not found")
		return
	}

	result := forecast.Project(goal, st.SpendingInsights(), st.Subscriptions(), time.Now())
	web.JSON(w, http.StatusOK, result)
}

func handleAnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	ts := models.NewTransactionSet(st.Transactions())

	totalIncome := ts.FilterByType(models.Income).SumAmount()
	totalExpenses := ts.FilterByType(models.Expense).SumAmount()

	var topCategory *string
	if spending := st.SpendingInsights(); len(spending) > 0 {
		topCategory = &spending[0].Category
	}

	web.JSON(w, http.StatusOK, models.AnalyticsSummary{
		TotalIncome:        round2(totalIncome),
		TotalExpenses:      round2(totalExpenses),
		NetIncome:          round2(totalIncome - totalExpenses),
		TransactionCount:   ts.Len(),
		TopExpenseCategory: topCategory,
		GoalsCount:         len(st.Goals()),
		SubscriptionsCount: len(st.Subscriptions()),
	})
}

// allowedFile reports whether the filename carries an accepted extension
func allowedFile(filename string) bool {
	return strings.Contains(filename, ".") && allowedExtensions[extension(filename)]
}

func extension(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// sanitizeFilename strips any path components from an uploaded filename
func sanitizeFilename(filename string) string {
	filename = filepath.Base(filepath.FromSlash(filename))
	return strings.ReplaceAll(filename, "..", "")
}

func saveUpload(src io.Reader, destPath string) error {
	dst, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
