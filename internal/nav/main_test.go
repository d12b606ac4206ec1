package nav

import (
	"os"
	"testing"

	"github.com/jask/hypertabs/internal/logging"
)

func TestMain(m *testing.M) {
	logging.ConfigureTests()
	os.Exit(m.Run())
}
