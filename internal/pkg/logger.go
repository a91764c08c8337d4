package pkg

import "go.uber.org/zap"

// Logger 进程级日志，main 里初始化；后台任务直接引用
var Logger = zap.NewNop()

func InitLogger(debug bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	Logger = l
	return nil
}
