package authhandler

import (
	"time"

	log "github.com/sirupsen/logrus"

	"talentflow-backend/lib/apperr"
	userstore "talentflow-backend/lib/user/store"
	"talentflow-backend/lib/utils/authutils"
	authapimodels "talentflow-backend/models/api/auth"
	dbmodels "talentflow-backend/models/db"
)

type Provider interface {
	Signup(req authapimodels.SignupRequest) (authapimodels.JWTResponse, error)
	Signin(req authapimodels.SigninRequest) (authapimodels.JWTResponse, error)
	Verify(userID string) (authapimodels.UserView, error)
}

func NewHandler(store userstore.Provider, jwtSecret string, jwtExpire time.Duration) Provider {
	return &impl{
		store:     store,
		jwtSecret: []byte(jwtSecret),
		jwtExpire: jwtExpire,
	}
}

type impl struct {
	store     userstore.Provider
	jwtSecret []byte
	jwtExpire time.Duration
}

func (i impl) Signup(req authapimodels.SignupRequest) (authapimodels.JWTResponse, error) {
	if err := req.Validate(); err != nil {
		return authapimodels.JWTResponse{}, apperr.Wrap(apperr.KindValidation, err, "invalid signup request")
	}
	user, err := i.store.Create(req.Name, req.Email, authutils.GetMD5Hash(req.Password))
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	log.WithField("email", user.Email).Info("user registered")
	return i.issue(user)
}

func (i impl) Signin(req authapimodels.SigninRequest) (authapimodels.JWTResponse, error) {
	if err := req.Validate(); err != nil {
		return authapimodels.JWTResponse{}, apperr.Wrap(apperr.KindValidation, err, "invalid signin request")
	}
	user, err := i.store.GetByEmail(req.Email)
	if err != nil {
		// do not reveal whether the account exists
		return authapimodels.JWTResponse{}, apperr.New(apperr.KindAuth, "invalid credentials")
	}
	if authutils.GetMD5Hash(req.Password) != user.Password {
		return authapimodels.JWTResponse{}, apperr.New(apperr.KindAuth, "invalid credentials")
	}
	return i.issue(user)
}

func (i impl) Verify(userID string) (authapimodels.UserView, error) {
	user, err := i.store.GetByID(userID)
	if err != nil {
		return authapimodels.UserView{}, apperr.New(apperr.KindAuth, "session is no longer valid")
	}
	return view(user), nil
}

func (i impl) issue(user *dbmodels.User) (authapimodels.JWTResponse, error) {
	token, err := authutils.GetToken(user.ID, user.Name, user.Email, i.jwtSecret, i.jwtExpire)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{Token: token, User: view(user)}, nil
}

func view(user *dbmodels.User) authapimodels.UserView {
	return authapimodels.UserView{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
