package optimizer

import "github.com/sirupsen/logrus"

func logVerbose(pass, function string) {
	logrus.WithFields(logrus.Fields{
		"pass":     pass,
		"function": function,
	}).Debug("optimizer: running pass")
}
