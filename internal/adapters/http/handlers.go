package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"svw.info/anagram/internal/domain"
	"svw.info/anagram/internal/ports"
	"svw.info/anagram/internal/usecase"
)

// maxGenerateCount caps puzzles per request.
const maxGenerateCount = 1000

type Handler struct {
	UC          *usecase.Service
	MaxAttempts int
}

func New(uc *usecase.Service, maxAttempts int) *Handler {
	if maxAttempts <= 0 {
		maxAttempts = 100
	}
	return &Handler{UC: uc, MaxAttempts: maxAttempts}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/verify", h.handleVerify)
	mux.HandleFunc("/api/extract", h.handleExtract)
	mux.HandleFunc("/api/decompose", h.handleDecompose)
	mux.HandleFunc("/api/datasets", h.handleDatasets)
	mux.Handle("/metrics", promhttp.Handler())
}

// decode reads a JSON body; an empty body leaves v untouched.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func allow(w http.ResponseWriter, r *http.Request, method string) bool {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != method {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func reply(w http.ResponseWriter, status int, v any) {
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(v)
}

// ---- Generate ----

type generateReq struct {
	Difficulty  int   `json:"difficulty,omitempty"`
	Count       int   `json:"count,omitempty"`
	Seed        int64 `json:"seed,omitempty"`
	MaxAttempts int   `json:"maxAttempts,omitempty"`
}

type generateResp struct {
	Records    []domain.TaskRecord `json:"records,omitempty"`
	Requested  int                 `json:"requested,omitempty"`
	Seed       int64               `json:"seed,omitempty"`
	DurationMs int64               `json:"durationMs,omitempty"`
	Attempts   int                 `json:"attempts,omitempty"`
	Error      string              `json:"error,omitempty"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req generateReq
	if err := decode(r, &req); err != nil {
		reply(w, http.StatusBadRequest, generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.Count <= 0 {
		req.Count = 1
	}
	if req.Count > maxGenerateCount {
		reply(w, http.StatusBadRequest, generateResp{Error: "count too large"})
		return
	}
	if req.Difficulty == 0 {
		req.Difficulty = domain.MinLevel
	}
	if req.MaxAttempts <= 0 {
		req.MaxAttempts = h.MaxAttempts
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ps, st, err := h.UC.Generate(r.Context(), seed, ports.GenerateRequest{
		Level: req.Difficulty, Count: req.Count, MaxAttempts: req.MaxAttempts,
	})
	if err != nil {
		reply(w, http.StatusInternalServerError, generateResp{Error: err.Error()})
		return
	}
	recs := make([]domain.TaskRecord, len(ps))
	for i, p := range ps {
		recs[i] = p.Record()
	}
	reply(w, http.StatusOK, generateResp{
		Records:    recs,
		Requested:  req.Count,
		Seed:       seed,
		DurationMs: st.Duration.Milliseconds(),
		Attempts:   st.Nodes,
	})
}

// ---- Verify ----

type verifyReq struct {
	Record domain.TaskRecord `json:"record"`
	Answer string            `json:"answer"`
}

type verifyResp struct {
	domain.Verdict
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req verifyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		reply(w, http.StatusBadRequest, verifyResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	p, err := domain.PuzzleFromRecord(req.Record)
	if err != nil {
		reply(w, http.StatusBadRequest, verifyResp{Error: "invalid record: " + err.Error()})
		return
	}
	verdict, err := h.UC.Verify(r.Context(), p, req.Answer)
	if err != nil {
		reply(w, http.StatusInternalServerError, verifyResp{Error: err.Error()})
		return
	}
	reply(w, http.StatusOK, verifyResp{Verdict: verdict})
}

// ---- Extract ----

type extractReq struct {
	Text string `json:"text"`
}
type extractResp struct {
	Answer string `json:"answer"`
	Error  string `json:"error,omitempty"`
}

func (h *Handler) handleExtract(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req extractReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		reply(w, http.StatusBadRequest, extractResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	out, err := h.UC.Extract(r.Context(), req.Text)
	if err != nil {
		reply(w, http.StatusInternalServerError, extractResp{Error: err.Error()})
		return
	}
	reply(w, http.StatusOK, extractResp{Answer: out})
}

// ---- Decompose ----

type decomposeReq struct {
	Letters string `json:"letters"`
}
type decomposeResp struct {
	Results    []domain.Decomposition `json:"results"`
	DurationMs int64                  `json:"durationMs,omitempty"`
	Nodes      int                    `json:"nodes,omitempty"`
	Error      string                 `json:"error,omitempty"`
}

func (h *Handler) handleDecompose(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req decomposeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		reply(w, http.StatusBadRequest, decomposeResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	res, st, err := h.UC.Decompose(r.Context(), req.Letters)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		reply(w, status, decomposeResp{Error: err.Error()})
		return
	}
	if res == nil {
		res = []domain.Decomposition{}
	}
	reply(w, http.StatusOK, decomposeResp{Results: res, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

// ---- Datasets ----

type datasetsResp struct {
	Datasets []domain.DatasetMeta `json:"datasets"`
	Error    string               `json:"error,omitempty"`
}

func (h *Handler) handleDatasets(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	ds, err := h.UC.List(r.Context())
	if err != nil {
		reply(w, http.StatusInternalServerError, datasetsResp{Error: err.Error()})
		return
	}
	reply(w, http.StatusOK, datasetsResp{Datasets: ds})
}
