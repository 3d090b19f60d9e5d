package identity

import (
	"context"
	"sync"

	"github.com/Luismorlan/choirmux/remote"
	"github.com/Luismorlan/choirmux/stream"
	Logger "github.com/Luismorlan/choirmux/utils/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/pkg/errors"
)

// CognitoProvider signs users in against a Cognito user pool app client
// with the USER_PASSWORD_AUTH flow. The user's "sub" is the account id.
type CognitoProvider struct {
	*session

	client   *cognitoidentityprovider.Client
	clientId string

	mu          sync.Mutex
	accessToken string
}

// NewCognitoProvider creates a client with the default aws config located in
// ~/.aws/config or the environment.
func NewCognitoProvider(ctx context.Context, region, clientId string, bus *stream.Bus) (*CognitoProvider, error) {
	opts := []func(*config.LoadOptions) error{}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}
	return &CognitoProvider{
		session:  newSession(bus),
		client:   cognitoidentityprovider.NewFromConfig(cfg),
		clientId: clientId,
	}, nil
}

// SignUp registers the account and signs it in right away. Pools that
// require confirmation leave the account signed out.
func (p *CognitoProvider) SignUp(ctx context.Context, email, password string) (remote.AuthUser, error) {
	out, err := p.client.SignUp(ctx, &cognitoidentityprovider.SignUpInput{
		ClientId: aws.String(p.clientId),
		Username: aws.String(email),
		Password: aws.String(password),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(email)},
		},
	})
	if err != nil {
		return remote.AuthUser{}, translateCognitoError(err, "sign up")
	}
	user := remote.AuthUser{Uid: aws.ToString(out.UserSub), Email: email}

	if _, err := p.SignIn(ctx, email, password); err != nil {
		Logger.Log.WithError(err).Warnf("signed up %s but could not sign in", email)
	}
	return user, nil
}

func (p *CognitoProvider) SignIn(ctx context.Context, email, password string) (remote.AuthUser, error) {
	out, err := p.client.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(p.clientId),
		AuthParameters: map[string]string{
			"USERNAME": email,
			"PASSWORD": password,
		},
	})
	if err != nil {
		return remote.AuthUser{}, translateCognitoError(err, "sign in")
	}
	if out.AuthenticationResult == nil || out.AuthenticationResult.AccessToken == nil {
		return remote.AuthUser{}, errors.Errorf("sign in %s: challenge %s is not supported", email, out.ChallengeName)
	}
	token := aws.ToString(out.AuthenticationResult.AccessToken)

	info, err := p.client.GetUser(ctx, &cognitoidentityprovider.GetUserInput{AccessToken: aws.String(token)})
	if err != nil {
		return remote.AuthUser{}, translateCognitoError(err, "get user")
	}
	user := remote.AuthUser{Uid: aws.ToString(info.Username), Email: email}
	for _, attr := range info.UserAttributes {
		if aws.ToString(attr.Name) == "sub" {
			user.Uid = aws.ToString(attr.Value)
		}
	}

	p.mu.Lock()
	p.accessToken = token
	p.mu.Unlock()
	p.set(&user)
	return user, nil
}

// SignOut revokes every token of the session. The local session is cleared
// even if revocation fails.
func (p *CognitoProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	token := p.accessToken
	p.accessToken = ""
	p.mu.Unlock()

	if token == "" {
		return remote.ErrNotSignedIn
	}
	p.set(nil)
	_, err := p.client.GlobalSignOut(ctx, &cognitoidentityprovider.GlobalSignOutInput{AccessToken: aws.String(token)})
	return translateCognitoError(err, "sign out")
}

func (p *CognitoProvider) SendPasswordResetEmail(ctx context.Context, email string) error {
	_, err := p.client.ForgotPassword(ctx, &cognitoidentityprovider.ForgotPasswordInput{
		ClientId: aws.String(p.clientId),
		Username: aws.String(email),
	})
	return translateCognitoError(err, "reset password")
}

// translateCognitoError maps Cognito exceptions onto the remote sentinels.
func translateCognitoError(err error, op string) error {
	if err == nil {
		return nil
	}
	var (
		notAuthorized *types.NotAuthorizedException
		notFound      *types.UserNotFoundException
		exists        *types.UsernameExistsException
		weak          *types.InvalidPasswordException
	)
	switch {
	case errors.As(err, &notAuthorized):
		return errors.Wrap(remote.ErrInvalidCredentials, op)
	case errors.As(err, &notFound):
		return errors.Wrap(remote.ErrAccountNotFound, op)
	case errors.As(err, &exists):
		return errors.Wrap(remote.ErrEmailTaken, op)
	case errors.As(err, &weak):
		return errors.Wrap(remote.ErrWeakPassword, op)
	}
	return errors.Wrap(err, op)
}
