package local
import (
	"time"

	"github.com/r3dacted42/stego/util"
	"github.com/r3dacted42/stego/config"
	"github.com/r3dacted42/stego/network"
	"github.com/r3dacted42/stego/protocol"
)

/*
 * package local runs the codecs behind a local HTTP API: it reads the
 * configuration, starts the worker queue and serves requests until the
 * server fails.
 */
func RunStegoServer( configFile string ) error {

	// 1. read all the things we need
	fullConfig, err := config.LoadConfig( configFile )
	if err != nil {
		return err
	}

	// 2. create all the things we need
	logger, err := util.NewLogger( &fullConfig.Logger )
	if err != nil {
		return err
	}
	defer logger.Close()

	proc := protocol.NewProcessor(
		fullConfig.StegConfig.NormalizeMessages,
		fullConfig.StegConfig.ImageOutputFormat,
	)

	// 3. run the workers
	queue := network.NewQueue(
		fullConfig.PoolConfig.Workers,
		fullConfig.PoolConfig.QueueSize,
		time.Duration( fullConfig.PoolConfig.Timeout ) * time.Millisecond,
		proc,
		logger,
	)
	defer queue.Close()

	return RunApiServer( &fullConfig.ServerConfig, logger, queue )
}
