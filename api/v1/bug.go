package v1

import (
	"net/http"

	"github.com/bugtrack-simple/dto"
	"github.com/gin-gonic/gin"
)

// ListBugs returns the bugs of a project, oldest first
func ListBugs(c *gin.Context) {
	bugs, err := bugService.ListByProject(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   bugs,
	})
}

// CreateBug files a new bug in the project
func CreateBug(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req dto.BugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
		})
		return
	}

	bug, err := bugService.Create(c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   bug,
	})
}

// EditBug updates the bug title, description and priority
func EditBug(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req dto.BugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
		})
		return
	}

	bug, err := bugService.Edit(c.Param("id"), c.Param("bugId"), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   bug,
	})
}

// CloseBug transitions an open bug to closed
func CloseBug(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	bug, err := bugService.Close(c.Param("id"), c.Param("bugId"), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   bug,
	})
}

// ReopenBug transitions a closed bug back to open
func ReopenBug(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	bug, err := bugService.Reopen(c.Param("id"), c.Param("bugId"), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   bug,
	})
}

// DeleteBug removes a bug permanently
func DeleteBug(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	if err := bugService.Delete(c.Param("id"), c.Param("bugId"), actor); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Bug deleted successfully",
	})
}
