package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"CustomerQuery/pkg/messaging"
	"CustomerQuery/pkg/nlp"
	"CustomerQuery/pkg/store"
)

// Handlers API处理程序
type Handlers struct {
	store     *store.Store
	extractor nlp.Extractor
	publisher *messaging.Publisher // 可为nil，未配置NATS时不发布审计事件
}

// NewHandlers 创建新的API处理程序
func NewHandlers(store *store.Store, extractor nlp.Extractor, publisher *messaging.Publisher) *Handlers {
	return &Handlers{
		store:     store,
		extractor: extractor,
		publisher: publisher,
	}
}

// HealthCheck 健康检查处理程序
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "服务运行正常",
	})
}

// NLPQueryRequest 自然语言查询请求
type NLPQueryRequest struct {
	Query string `json:"query"`
}

// NLPQuery 自然语言查询处理程序
func (h *Handlers) NLPQuery(c *gin.Context) {
	var req NLPQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "查询内容不能为空",
		})
		return
	}

	// 解析查询并执行过滤
	params := h.extractor.Extract(req.Query)
	results := h.store.Filter(params)

	// 发布查询审计事件（尽力而为，不影响请求）
	if h.publisher != nil {
		go func() {
			if err := h.publisher.PublishQueryEvent(req.Query, params, len(results)); err != nil {
				log.Printf("发布查询审计事件失败: %v", err)
			}
		}()
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"query":        req.Query,
		"parsed_query": params,
		"results":      results,
		"count":        len(results),
	})
}

// SingleQueryRequest 单客户查询请求
type SingleQueryRequest struct {
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
}

// SingleQuery 单客户查询处理程序
func (h *Handlers) SingleQuery(c *gin.Context) {
	var req SingleQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.CustomerID == "" && req.CustomerName == "") {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "请提供客户ID或客户名称",
		})
		return
	}

	customer, found := h.store.GetByIDOrName(req.CustomerID, req.CustomerName)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "未找到该客户",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"customer": customer,
	})
}

// BatchQueryRequest 批量客户查询请求
type BatchQueryRequest struct {
	CustomerIDs   []string `json:"customer_ids"`
	CustomerNames []string `json:"customer_names"`
}

// BatchQuery 批量客户查询处理程序
func (h *Handlers) BatchQuery(c *gin.Context) {
	var req BatchQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil || (len(req.CustomerIDs) == 0 && len(req.CustomerNames) == 0) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "请提供客户ID列表或客户名称列表",
		})
		return
	}

	results := h.store.GetManyByIDsOrNames(req.CustomerIDs, req.CustomerNames)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": results,
		"count":   len(results),
	})
}

// AllCustomers 获取所有客户列表（分页）
func (h *Handlers) AllCustomers(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的分页参数",
		})
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的分页参数",
		})
		return
	}

	customers, total := h.store.Page(page, pageSize)

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"customers": customers,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// UserEvents 获取某客户的行为事件列表
func (h *Handlers) UserEvents(c *gin.Context) {
	customerID := c.Query("customer_id")
	customerName := c.Query("customer_name")

	if customerID == "" && customerName == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "请提供客户ID或客户名称",
		})
		return
	}

	customer, found := h.store.GetByIDOrName(customerID, customerName)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "未找到该客户",
		})
		return
	}

	events := h.store.GetEventsByUser(customer.UserID)

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"customer": customer,
		"events":   events,
		"count":    len(events),
	})
}
