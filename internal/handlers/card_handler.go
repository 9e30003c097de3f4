// internal/handlers/card_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_keiko_flashcards/internal/model"
	"go_keiko_flashcards/internal/service"
	"go_keiko_flashcards/internal/webutil"
)

type CardHandler struct {
	service service.CardService
	logger  *slog.Logger
}

func NewCardHandler(s service.CardService, logger *slog.Logger) *CardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CardHandler{
		service: s,
		logger:  logger,
	}
}

func (h *CardHandler) respondCards(w http.ResponseWriter, logger *slog.Logger, cards []*model.Card, err error) {
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Cards not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error listing cards in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}
	if cards == nil {
		cards = []*model.Card{}
	}
	logger.Info("Cards listed successfully", slog.Int("count", len(cards)))
	webutil.RespondWithJSON(w, http.StatusOK, cards, logger)
}

// GetCards は全カードを返すハンドラ
func (h *CardHandler) GetCards(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCards"))
	cards, err := h.service.ListCards(r.Context())
	h.respondCards(w, logger, cards, err)
}

// GetCardsByCourseCode はコースに属するカードを返すハンドラ
func (h *CardHandler) GetCardsByCourseCode(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCardsByCourseCode"))

	courseCode, ok := requireStringParam(w, r, logger, "course_code")
	if !ok {
		return
	}
	logger = logger.With(slog.String("course_code", courseCode))

	cards, err := h.service.ListCardsByCourseCode(r.Context(), courseCode)
	h.respondCards(w, logger, cards, err)
}

// GetCardsByQuizID はクイズの対象カード (同じコース・カテゴリ) を返すハンドラ
func (h *CardHandler) GetCardsByQuizID(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCardsByQuizID"))

	quizID, ok := parseUUIDParam(w, r, logger, "quiz_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("quiz_id", quizID.String()))

	cards, err := h.service.ListCardsByQuizID(r.Context(), quizID)
	h.respondCards(w, logger, cards, err)
}

// GetCard は特定のカードを返すハンドラ
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCard"))

	cardID, ok := parseUUIDParam(w, r, logger, "card_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("card_id", cardID.String()))

	card, err := h.service.GetCard(r.Context(), cardID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Card not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting card from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Card retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, card, logger)
}

// PostCard は新しいカードを作成するハンドラ
func (h *CardHandler) PostCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostCard"))

	var req model.CreateCardRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	card, err := h.service.CreateCard(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating card in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Card created successfully", slog.String("card_id", card.ID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, card, logger)
}

// PutCard はカードを全体更新するハンドラ (IDはボディで指定)
func (h *CardHandler) PutCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutCard"))

	var req model.UpdateCardRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}
	logger = logger.With(slog.String("card_id", req.ID.String()))

	card, err := h.service.UpdateCard(r.Context(), &req)
	if err != nil {
		logger.Error("Error updating card in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Card updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, card, logger)
}

// DeleteCard はカードを削除するハンドラ
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteCard"))

	cardID, ok := parseUUIDParam(w, r, logger, "card_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("card_id", cardID.String()))

	if _, err := h.service.DeleteCard(r.Context(), cardID); err != nil {
		logger.Error("Error deleting card in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Card deleted successfully")
	webutil.RespondEmpty(w)
}

// GetTags は使用中のタグ一覧を返すハンドラ
func (h *CardHandler) GetTags(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTags"))

	tags, err := h.service.GetAvailableTags(r.Context())
	if err != nil {
		logger.Error("Error getting tags from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if tags == nil {
		tags = []string{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.TagsResponse{Tags: tags}, logger)
}
