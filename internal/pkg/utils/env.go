package utils

import (
	"dentclinic-service/internal/pkg/constvars"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

func getEnv(key string, defaultValue interface{}) interface{} {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	switch defaultValue.(type) {
	case string:
		return value
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			logrus.Warnf(constvars.ErrEnvParsing, key, err)
			return defaultValue
		}
		return intValue
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			logrus.Warnf(constvars.ErrEnvParsing, key, err)
			return defaultValue
		}
		return boolValue
	case float64:
		floatValue, err := strconv.ParseFloat(value, 64)
		if err != nil {
			logrus.Warnf(constvars.ErrEnvParsing, key, err)
			return defaultValue
		}
		return floatValue
	case time.Duration:
		durationValue, err := time.ParseDuration(value)
		if err != nil {
			logrus.Warnf(constvars.ErrEnvParsing, key, err)
			return defaultValue
		}
		return durationValue
	default:
		return defaultValue
	}
}

func GetEnvString(key, defaultValue string) string {
	return getEnv(key, defaultValue).(string)
}

func GetEnvInt(key string, defaultValue int) int {
	return getEnv(key, defaultValue).(int)
}

func GetEnvBool(key string, defaultValue bool) bool {
	return getEnv(key, defaultValue).(bool)
}

func GetEnvFloat(key string, defaultValue float64) float64 {
	return getEnv(key, defaultValue).(float64)
}

func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	return getEnv(key, defaultValue).(time.Duration)
}
