package core

import "github.com/gin-gonic/gin"

var engine *gin.Engine

func (s *Core) HttpEngine() *gin.Engine {
	if engine == nil {
		engine = gin.Default()
	}
	return engine
}
