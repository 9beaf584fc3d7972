package http

import (
	"errors"
	"net/http"

	"github.com/aryaprdni/cash-ease-be/internal/wallet/domain"
	"github.com/gin-gonic/gin"
)

const UserIDKey = "id"

type createUserRequestBody struct {
	Name          string `json:"name" binding:"required,min=1,max=100"`
	Bank          string `json:"bank" binding:"required,min=1,max=50"`
	AccountNumber string `json:"account_number" binding:"required,min=1,max=30"`
}

type updateUserRequestBody struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type transferRequestBody struct {
	SenderID      string `json:"senderId" binding:"required,uuid"`
	RecipientName string `json:"recipientName" binding:"required,min=1,max=100"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
}

type topUpRequestBody struct {
	ID     string `json:"id" binding:"required,uuid"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

type WalletHandler struct {
	users     domain.UserService
	transfers domain.TransferService
	topUps    domain.TopUpService
	searches  domain.LedgerSearchService
}

func NewWalletHandler(
	users domain.UserService,
	transfers domain.TransferService,
	topUps domain.TopUpService,
	searches domain.LedgerSearchService,
) *WalletHandler {
	return &WalletHandler{
		users:     users,
		transfers: transfers,
		topUps:    topUps,
		searches:  searches,
	}
}

func (h *WalletHandler) CreateUser(c *gin.Context) {
	var body createUserRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	profile, err := h.users.CreateUser(c, domain.CreateUserRequest{
		Name:          body.Name,
		Bank:          body.Bank,
		AccountNumber: body.AccountNumber,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

func (h *WalletHandler) UpdateUser(c *gin.Context) {
	var body updateUserRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	profile, err := h.users.UpdateUser(c, domain.UpdateUserRequest{
		ID:   c.Param(UserIDKey),
		Name: body.Name,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *WalletHandler) Transfer(c *gin.Context) {
	var body transferRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	result, err := h.transfers.Transfer(c, domain.TransferRequest{
		SenderID:      body.SenderID,
		RecipientName: body.RecipientName,
		Amount:        body.Amount,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *WalletHandler) TopUp(c *gin.Context) {
	var body topUpRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	result, err := h.topUps.TopUp(c, domain.TopUpRequest{
		UserID: body.ID,
		Amount: body.Amount,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *WalletHandler) Search(c *gin.Context) {
	result, err := h.searches.Search(c, domain.SearchRequest{
		Type:      c.Query("type"),
		Keyword:   c.Query("keyword"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func handleDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, &domain.UserNotFoundError{}):
		c.JSON(http.StatusNotFound, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.DuplicateUserError{}):
		c.JSON(http.StatusConflict, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.InsufficientBalanceError{}),
		errors.Is(err, &domain.InvalidArgumentsError{}):
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
	}
}
