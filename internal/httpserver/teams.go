package httpserver

import (
	"net/http"

	"web420-api/internal/domain"
	teamsvc "web420-api/internal/service/team"

	"github.com/gin-gonic/gin"
)

type playerRequest struct {
	FirstName string   `json:"firstName" binding:"required"`
	LastName  string   `json:"lastName" binding:"required"`
	Salary    *float64 `json:"salary"`
}

func (p playerRequest) toDomain() domain.Player {
	return domain.Player{FirstName: p.FirstName, LastName: p.LastName, Salary: p.Salary}
}

type teamRequest struct {
	Name    string          `json:"name" binding:"required"`
	Mascot  string          `json:"mascot" binding:"required"`
	Players []playerRequest `json:"players" binding:"dive"`
}

const invalidTeamID = "Invalid teamID"

func (h *handlers) listTeams(c *gin.Context) {
	teams, err := h.deps.Teams.List(c.Request.Context())
	if err != nil {
		h.failText(c, "list teams", err, collectionPolicy, "")
		return
	}
	c.JSON(http.StatusOK, teams)
}

func (h *handlers) createTeam(c *gin.Context) {
	var req teamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.failText(c, "create team", err, collectionPolicy, "")
		return
	}
	var players []domain.Player
	if req.Players != nil {
		players = make([]domain.Player, 0, len(req.Players))
		for _, p := range req.Players {
			players = append(players, p.toDomain())
		}
	}
	team, err := h.deps.Teams.Create(c.Request.Context(), teamsvc.CreateInput{
		Name:    req.Name,
		Mascot:  req.Mascot,
		Players: players,
	})
	if err != nil {
		h.failText(c, "create team", err, collectionPolicy, "")
		return
	}
	c.JSON(http.StatusOK, team)
}

func (h *handlers) listPlayers(c *gin.Context) {
	players, err := h.deps.Teams.Players(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.failText(c, "list players", err, teamByIDPolicy, invalidTeamID)
		return
	}
	c.JSON(http.StatusOK, players)
}

func (h *handlers) addPlayer(c *gin.Context) {
	var req playerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.failText(c, "add player", err, teamByIDPolicy, "")
		return
	}
	player, err := h.deps.Teams.AddPlayer(c.Request.Context(), c.Param("id"), req.toDomain())
	if err != nil {
		h.failText(c, "add player", err, teamByIDPolicy, invalidTeamID)
		return
	}
	c.JSON(http.StatusOK, player)
}

func (h *handlers) deleteTeam(c *gin.Context) {
	id := c.Param("id")
	if err := h.deps.Teams.Delete(c.Request.Context(), id); err != nil {
		h.failText(c, "delete team", err, teamByIDPolicy, invalidTeamID)
		return
	}
	okText(c, "Team with ID: "+id+" deleted")
}
