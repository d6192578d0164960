package inspect

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/vfaronov/headerseg/internal/config"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

var testConfig = config.Config{
	HTTPServerAddress: "localhost:0",
	OutputFormat:      config.FormatJSON,
}
