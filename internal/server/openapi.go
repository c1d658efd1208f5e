package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "QuizWheel API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the QuizWheel trivia game.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /api/games
	createGame, _ := r.NewOperationContext(http.MethodPost, "/api/games")
	createGame.SetSummary("Create game")
	createGame.SetDescription("Starts a new game and returns its ID, the host token, and the opening state.")
	createGame.AddReqStructure(CreateGameRequest{})
	createGame.AddRespStructure(CreateGameResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	createGame.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(createGame)

	// GET /api/games/{gameID}
	getState, _ := r.NewOperationContext(http.MethodGet, "/api/games/{gameID}")
	getState.SetSummary("Get game state")
	getState.SetDescription("Returns the full game state. Open to spectators.")
	getState.AddRespStructure(StateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getState.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getState)

	// DELETE /api/games/{gameID}
	deleteGame, _ := r.NewOperationContext(http.MethodDelete, "/api/games/{gameID}")
	deleteGame.SetSummary("Delete game")
	deleteGame.SetDescription("Removes the game. Requires the host Bearer token.")
	deleteGame.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	deleteGame.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	deleteGame.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(deleteGame)

	// POST /api/games/{gameID}/spin
	postSpin, _ := r.NewOperationContext(http.MethodPost, "/api/games/{gameID}/spin")
	postSpin.SetSummary("Spin the wheel")
	postSpin.SetDescription("Resolves one wheel outcome into a question or a surprise. Requires the host Bearer token.")
	postSpin.AddRespStructure(SpinResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postSpin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	postSpin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postSpin)

	// POST /api/games/{gameID}/answer
	postAnswer, _ := r.NewOperationContext(http.MethodPost, "/api/games/{gameID}/answer")
	postAnswer.SetSummary("Submit answer")
	postAnswer.SetDescription("Scores the active team's answer and advances the turn. Requires the host Bearer token.")
	postAnswer.AddReqStructure(AnswerRequest{})
	postAnswer.AddRespStructure(AnswerResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	postAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postAnswer)

	// POST /api/games/{gameID}/surprise/ack
	postAck, _ := r.NewOperationContext(http.MethodPost, "/api/games/{gameID}/surprise/ack")
	postAck.SetSummary("Acknowledge surprise")
	postAck.SetDescription("Confirms the surprise display finished and advances the turn. Requires the host Bearer token.")
	postAck.AddRespStructure(SurpriseAckResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postAck.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	postAck.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postAck)

	// GET /api/games/{gameID}/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/games/{gameID}/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream of game updates. Open to spectators.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// POST /api/admin/login
	postLogin, _ := r.NewOperationContext(http.MethodPost, "/api/admin/login")
	postLogin.SetSummary("Admin login")
	postLogin.SetDescription("Authenticate with the operator password. Sets admin_session cookie.")
	postLogin.AddReqStructure(AdminLoginRequest{})
	postLogin.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	postLogin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postLogin)

	// POST /api/admin/logout
	postLogout, _ := r.NewOperationContext(http.MethodPost, "/api/admin/logout")
	postLogout.SetSummary("Admin logout")
	postLogout.SetDescription("Clears the admin session and cookie.")
	postLogout.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postLogout)

	// GET /api/admin/sessions
	listSessions, _ := r.NewOperationContext(http.MethodGet, "/api/admin/sessions")
	listSessions.SetSummary("List live games")
	listSessions.SetDescription("Returns all live games with phase and progress. Requires admin_session cookie.")
	listSessions.AddRespStructure([]AdminSessionSummary{}, openapi.WithHTTPStatus(http.StatusOK))
	listSessions.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(listSessions)

	// DELETE /api/admin/sessions/{gameID}
	endSession, _ := r.NewOperationContext(http.MethodDelete, "/api/admin/sessions/{gameID}")
	endSession.SetSummary("End live game")
	endSession.SetDescription("Force-removes a live game. Requires admin_session cookie.")
	endSession.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	endSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	endSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(endSession)

	// GET /api/admin/templates
	listTemplates, _ := r.NewOperationContext(http.MethodGet, "/api/admin/templates")
	listTemplates.SetSummary("List question templates")
	listTemplates.SetDescription("Returns the question pool served to new games. Requires admin_session cookie.")
	listTemplates.AddRespStructure([]AdminTemplateItem{}, openapi.WithHTTPStatus(http.StatusOK))
	listTemplates.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(listTemplates)

	// POST /api/admin/templates
	createTemplate, _ := r.NewOperationContext(http.MethodPost, "/api/admin/templates")
	createTemplate.SetSummary("Create question template")
	createTemplate.SetDescription("Adds a question to the pool. Requires admin_session cookie.")
	createTemplate.AddReqStructure(AdminTemplateRequest{})
	createTemplate.AddRespStructure(AdminTemplateItem{}, openapi.WithHTTPStatus(http.StatusCreated))
	createTemplate.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	createTemplate.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(createTemplate)

	// PUT /api/admin/templates/{id}
	updateTemplate, _ := r.NewOperationContext(http.MethodPut, "/api/admin/templates/{id}")
	updateTemplate.SetSummary("Update question template")
	updateTemplate.SetDescription("Replaces a question in the pool. Requires admin_session cookie.")
	updateTemplate.AddReqStructure(AdminTemplateRequest{})
	updateTemplate.AddRespStructure(AdminTemplateItem{}, openapi.WithHTTPStatus(http.StatusOK))
	updateTemplate.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	updateTemplate.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	updateTemplate.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(updateTemplate)

	// DELETE /api/admin/templates/{id}
	deleteTemplate, _ := r.NewOperationContext(http.MethodDelete, "/api/admin/templates/{id}")
	deleteTemplate.SetSummary("Delete question template")
	deleteTemplate.SetDescription("Removes a question from the pool. Requires admin_session cookie.")
	deleteTemplate.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	deleteTemplate.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	deleteTemplate.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(deleteTemplate)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
