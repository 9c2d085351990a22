package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ahanaf-mohosen/DailyMoodCheck/config"
)

type GoogleTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
	IDToken     string `json:"id_token"`
}

type GoogleUserInfo struct {
	Sub     string `json:"sub"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

var googleClientID string
var googleClientSecret string
var googleRedirectURL string

func init() {
	config, err := config.LoadConfig(".")
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	googleClientID = config.GoogleClientID
	googleClientSecret = config.GoogleClientSecret
	googleRedirectURL = config.GoogleRedirectURL
}

// GetGoogleAccessToken 用授权码换取Google access_token
func GetGoogleAccessToken(code string) (string, error) {
	values := url.Values{}
	values.Set("code", code)
	values.Set("client_id", googleClientID)
	values.Set("client_secret", googleClientSecret)
	values.Set("redirect_uri", googleRedirectURL)
	values.Set("grant_type", "authorization_code")

	resp, err := http.Post(
		"https://oauth2.googleapis.com/token",
		"application/x-www-form-urlencoded",
		strings.NewReader(values.Encode()),
	)
	if err != nil {
		return "", fmt.Errorf("请求Google token失败: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Google token接口返回异常状态: %d", resp.StatusCode)
	}

	var tokenResp GoogleTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("解析Google token响应失败: %v", err)
	}

	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("Google token响应中没有access_token")
	}

	return tokenResp.AccessToken, nil
}

// GetGoogleUserInfo 获取Google用户信息
func GetGoogleUserInfo(accessToken string) (*GoogleUserInfo, error) {
	req, err := http.NewRequest(http.MethodGet, "https://www.googleapis.com/oauth2/v3/userinfo", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求Google用户信息失败: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Google用户信息接口返回异常状态: %d", resp.StatusCode)
	}

	var userInfo GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, fmt.Errorf("解析Google用户信息失败: %v", err)
	}

	if userInfo.Sub == "" {
		return nil, fmt.Errorf("无法获取用户标识")
	}

	return &userInfo, nil
}
