package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/artale-crew/boss-scheduler/backend/internal/domain"
)

// RegisterPlayer 註冊玩家。名稱唯一且註冊後不可更改；
// 已存在的名稱不視為錯誤，直接回傳既有的玩家資料（等同重新登入）。
func (h *Handler) RegisterPlayer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name" validate:"required,max=255"`
		JobClass string `json:"jobClass" validate:"required,oneof=龍騎 十字 騎士 鏢賊 刀賊 弓手 弩手 冰雷 火毒 祭司 打手 槍手"`
		Email    string `json:"email" validate:"omitempty,email"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	existing, err := h.repository.GetPlayerByName(req.Name)
	if err == nil {
		h.successResponse(w, r, "玩家已註冊，以既有資料登入", existing)
		return
	}
	if !errors.Is(err, sql.ErrNoRows) {
		h.internalServerError(w, r, err)
		return
	}

	player := &domain.Player{
		Name:     req.Name,
		JobClass: domain.JobClass(req.JobClass),
		Email:    req.Email,
	}

	if err := h.repository.CreatePlayer(player); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "players_name_key":
			// 前面查過不存在，走到這裡表示兩個註冊請求撞在一起
			h.errorResponse(w, r, "玩家名稱已被使用")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 有留信箱的玩家寄一封歡迎信
	if player.Email != "" {
		mailMessage := domain.MailMessage{
			Type: "welcome",
			To:   player.Email,
			Data: domain.WelcomeMailData{
				PlayerName: player.Name,
				JobClass:   string(player.JobClass),
			},
		}
		if err := h.publishMailMessage(mailMessage); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	h.successResponse(w, r, "註冊成功", player)
}

// GetPlayers 取得玩家清單；帶 name 參數時只查詢單一玩家。
func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	if name != "" {
		player, err := h.repository.GetPlayerByName(name)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "玩家不存在")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		h.successResponse(w, r, "取得玩家成功", player)
		return
	}

	players, err := h.repository.GetAllPlayers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "取得玩家清單成功", players)
}
